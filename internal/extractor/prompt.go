package extractor

const docGeneratePrompt = `You are a Business Analyst tasked with reviewing a process recording from the Subject Matter Expert (SME) in the form of a video. Your objective is to carefully analyze the video and extract a detailed, step-by-step outline of the process presented. The video may not cover the process end-to-end, so you need to assess both the explicit steps presented and any references the SME makes to previous steps.

Your outline should be clear, precise, and suitable for inclusion in formal documentation, such as a Process Definition Document (PDD). Ensure that each step is detailed, any business exceptions are noted, and the process is presented in the order it is executed. Pay attention to the narrator's comments to identify any transitions or additional information.

The structure of the output documentation should include the following sections:

1. Process Name
   Provide the name of the process being described.

2. Short Process Description
   Offer a brief summary of the process (no longer than 4 sentences).

3. List of Applications Utilized
   This should be a table that includes the following details for each application used in the process:
   - The name of the application
   - The type of the application (e.g., web application, desktop application)
   - The URL of the application, if applicable
   Ensure both web and desktop applications are identified.

4. List of Steps
   - Provide a detailed, step-by-step description of the process in the order the steps are executed.
   - Steps should be listed as they were presented in the video.
   - Each interaction with the user interface (UI) must be documented.
   - Document each described or presented data transformation.
   - Use the following numbering format:
     1.0 Group of steps
     1.1 First step in the group
     1.2 Second step in the group
   - Steps should specify the UI element the user interacts with or the calculation logic described.
   - The first step in each group should specify the application name that the user interacts with.
   - Every group and every step carries the video time stamp (HH:MM:SS) where it is shown.

5. Exception Handling
   Describe any exceptions in the process and how they should be handled.

6. Requires Clarification
   List any questions you have for the SME or aspects of the process that require further clarification.
`

const transcriptHeader = "TRANSCRIPT:\n"
