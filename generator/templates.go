package generator

import "strings"

const promptToken = "{{prompt}}"

var templates = map[TaskType]string{
	TaskDesign:  designTemplate,
	TaskCode:    codeTemplate,
	TaskSummary: summaryTemplate,
	TaskChart:   chartTemplate,
	TaskSocial:  socialTemplate,
	TaskText:    textTemplate,
}

// Generate renders the fixed template for task with prompt embedded verbatim.
// Unknown task types fall back to a one-line description.
func Generate(task TaskType, prompt string) string {
	tmpl, ok := templates[task]
	if !ok {
		return "Generated content for " + string(task) + " task based on: \"" + prompt + "\""
	}
	return strings.ReplaceAll(tmpl, promptToken, prompt)
}

const designTemplate = `# Design Concept

Based on your prompt: "{{prompt}}"

## Layout Structure
- Hero section with compelling headline
- Feature highlights with icons
- Call-to-action buttons
- Responsive grid layout

## Color Scheme
- Primary: #3B82F6 (Blue)
- Secondary: #10B981 (Green)
- Accent: #F59E0B (Amber)

## Typography
- Headers: Inter Bold
- Body: Inter Regular
- Accent: Inter Medium

## Components
- Navigation bar with logo
- Card-based content sections
- Interactive buttons with hover states
- Mobile-responsive design

This design focuses on modern aesthetics with clean lines and intuitive user experience.`

const codeTemplate = `// React Component Generated from: "{{prompt}}"

import React, { useState } from 'react';
import { User, Mail, Phone, MapPin } from 'lucide-react';

interface UserProfileProps {
  user: {
    name: string;
    email: string;
    phone: string;
    location: string;
    avatar: string;
  };
}

export default function UserProfile({ user }: UserProfileProps) {
  const [isEditing, setIsEditing] = useState(false);
  const [formData, setFormData] = useState(user);

  const handleSave = () => {
    // Save logic here
    setIsEditing(false);
  };

  return (
    <div className="bg-white rounded-lg shadow-md p-6 max-w-md mx-auto">
      <div className="flex items-center mb-6">
        <img
          src={user.avatar}
          alt={user.name}
          className="w-16 h-16 rounded-full mr-4"
        />
        <div>
          <h2 className="text-xl font-bold text-gray-800">{user.name}</h2>
          <p className="text-gray-600">User Profile</p>
        </div>
      </div>
      
      <div className="space-y-4">
        <div className="flex items-center">
          <Mail className="w-5 h-5 text-gray-500 mr-3" />
          <span className="text-gray-700">{user.email}</span>
        </div>
        
        <div className="flex items-center">
          <Phone className="w-5 h-5 text-gray-500 mr-3" />
          <span className="text-gray-700">{user.phone}</span>
        </div>
        
        <div className="flex items-center">
          <MapPin className="w-5 h-5 text-gray-500 mr-3" />
          <span className="text-gray-700">{user.location}</span>
        </div>
      </div>
      
      <button
        onClick={() => setIsEditing(!isEditing)}
        className="mt-6 w-full bg-blue-500 text-white py-2 rounded-lg hover:bg-blue-600 transition-colors"
      >
        {isEditing ? 'Save Changes' : 'Edit Profile'}
      </button>
    </div>
  );
}`

const summaryTemplate = `# Content Summary

**Original Prompt:** "{{prompt}}"

## Key Points
• Artificial Intelligence is transforming industries at an unprecedented pace
• Machine learning algorithms are becoming more sophisticated and accessible
• AI applications span from healthcare to autonomous vehicles
• Ethical considerations are crucial for responsible AI development

## Main Insights
The content discusses the rapid evolution of AI technologies and their impact on society. Key themes include technological advancement, practical applications, and the importance of ethical frameworks.

## Recommendations
1. Stay informed about AI developments
2. Consider ethical implications in AI implementation
3. Explore practical applications in your field
4. Invest in AI education and training

## Conclusion
The future of AI looks promising but requires careful consideration of both opportunities and challenges. Balanced approach is essential for sustainable progress.`

const chartTemplate = `# Data Visualization: Quarterly Sales Performance

**Based on prompt:** "{{prompt}}"

## Chart Configuration
- Type: Bar Chart
- Data Points: Q1-Q4 Sales Data
- Colors: Blue gradient theme

## Sample Data
Q1 2024: $125,000
Q2 2024: $150,000
Q3 2024: $175,000
Q4 2024: $200,000

## Key Insights
• 60% growth from Q1 to Q4
• Consistent upward trend
• Strong Q4 performance
• Average quarterly growth: 15%

## Recommendations
- Continue current growth strategies
- Investigate Q4 success factors
- Plan for sustained momentum
- Monitor market conditions

*Chart visualization would be rendered here in a real implementation*`

const socialTemplate = `📱 **LinkedIn Post**

*Prompt inspiration: "{{prompt}}"*

🚀 **Productivity Tips That Actually Work**

After years of testing different approaches, here are my top 5 productivity hacks:

1️⃣ **Time Blocking** - Schedule specific tasks in calendar blocks
2️⃣ **2-Minute Rule** - If it takes less than 2 minutes, do it now
3️⃣ **Single-Tasking** - Focus on one thing at a time
4️⃣ **Energy Management** - Match tasks to your energy levels
5️⃣ **Regular Breaks** - Use the Pomodoro Technique

💡 The key isn't doing more things—it's doing the right things efficiently.

What's your #1 productivity tip? Share below! 👇

#Productivity #TimeManagement #WorkSmart #LinkedIn #CareerTips

---

**Engagement Strategy:**
- Post during peak hours (8-10 AM)
- Use relevant hashtags
- Ask questions to encourage comments
- Share personal experience for authenticity`

const textTemplate = `Professional Email Response

**Subject:** Project Update - Weekly Status Report

**Generated from:** "{{prompt}}"

Dear Team,

I hope this email finds you well. I wanted to provide you with a comprehensive update on our current project status and upcoming milestones.

## Current Progress
We have successfully completed 75% of the planned deliverables for this quarter. The development team has been working diligently on the core features, and we're pleased to report that we're ahead of schedule in several key areas.

## Key Accomplishments
• Completed user authentication system
• Implemented dashboard analytics
• Finished mobile responsive design
• Conducted thorough security testing

## Upcoming Priorities
1. User acceptance testing phase
2. Performance optimization
3. Final bug fixes and improvements
4. Documentation completion

## Timeline
We remain on track to deliver the final product by the end of this month. The next milestone review is scheduled for Friday, where we'll discuss the remaining tasks and resource allocation.

## Action Items
Please review the attached project documentation and provide feedback by Wednesday. If you have any concerns or questions, don't hesitate to reach out.

Thank you for your continued dedication and hard work.

Best regards,
[Your Name]
Project Manager

---

**Email Metadata:**
- Tone: Professional, informative
- Length: Concise but comprehensive
- Call to action: Clear next steps
- Attachments: Project documentation`
